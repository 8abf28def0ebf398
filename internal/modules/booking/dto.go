package booking

import "swiftdrive/internal/domain"

type StartAttemptRequest struct {
	CarID      string `json:"car_id" binding:"required"`
	Location   string `json:"location"`
	PickupDate string `json:"pickup_date" binding:"required"`
	PickupTime string `json:"pickup_time"`
	ReturnDate string `json:"return_date" binding:"required"`
	ReturnTime string `json:"return_time"`
}

type UpdateTimesRequest struct {
	Location   string `json:"location"`
	PickupDate string `json:"pickup_date" binding:"required"`
	PickupTime string `json:"pickup_time"`
	ReturnDate string `json:"return_date" binding:"required"`
	ReturnTime string `json:"return_time"`
}

type FinalizeRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
}

type ConfirmRequest struct {
	Verification string `json:"verification" binding:"required"`
}

type QuoteRequest struct {
	CarID      string `json:"car_id" binding:"required"`
	PickupDate string `json:"pickup_date" binding:"required"`
	PickupTime string `json:"pickup_time"`
	ReturnDate string `json:"return_date" binding:"required"`
	ReturnTime string `json:"return_time"`
}

func (r StartAttemptRequest) criteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Location:   r.Location,
		PickupDate: r.PickupDate,
		PickupTime: r.PickupTime,
		ReturnDate: r.ReturnDate,
		ReturnTime: r.ReturnTime,
	}
}

func (r QuoteRequest) criteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		PickupDate: r.PickupDate,
		PickupTime: r.PickupTime,
		ReturnDate: r.ReturnDate,
		ReturnTime: r.ReturnTime,
	}
}

func (r UpdateTimesRequest) criteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Location:   r.Location,
		PickupDate: r.PickupDate,
		PickupTime: r.PickupTime,
		ReturnDate: r.ReturnDate,
		ReturnTime: r.ReturnTime,
	}
}
