package concierge

import (
	"context"
	"log"
	"strings"
	"time"

	"swiftdrive/internal/domain"
)

// Fixed replies keep the concierge useful when the model is down or
// answers with nothing.
const (
	recommendFallback = "Our top pick for this trip is the BMW X5 for its versatility and comfort."
	recommendEmpty    = "I recommend checking out our Tesla Model S for a premium experience!"
	askFallback       = "I'm currently optimizing my systems. Please try again in a moment, or browse our elite collection below."
	askEmpty          = "I'm here to help you find the perfect drive. What can I assist you with today?"
)

type GenerateRequest struct {
	Prompt            string
	SystemInstruction string
	Temperature       float32
}

type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

type CarSource interface {
	All() []domain.Car
}

// Service wraps the generator with the SwiftAI persona, the fleet
// context and the fallback replies. A nil generator is allowed and
// degrades to the fallbacks, so the server runs without an API key.
type Service struct {
	gen     Generator
	cars    CarSource
	timeout time.Duration
}

func NewService(gen Generator, cars CarSource, timeout time.Duration) *Service {
	return &Service{gen: gen, cars: cars, timeout: timeout}
}

// Recommend suggests a car for the given trip.
func (s *Service) Recommend(ctx context.Context, criteria domain.SearchCriteria) string {
	if s.gen == nil {
		return recommendFallback
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.gen.Generate(ctx, GenerateRequest{
		Prompt:      recommendationPrompt(criteria, s.cars.All()),
		Temperature: 0.7,
	})
	if err != nil {
		log.Printf("concierge recommend error: %v", err)
		return recommendFallback
	}
	if strings.TrimSpace(text) == "" {
		return recommendEmpty
	}
	return text
}

// Ask answers a free-form question as the SwiftAI concierge.
func (s *Service) Ask(ctx context.Context, query string) string {
	if s.gen == nil {
		return askFallback
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.gen.Generate(ctx, GenerateRequest{
		Prompt:            query,
		SystemInstruction: conciergeInstruction(s.cars.All()),
		Temperature:       0.8,
	})
	if err != nil {
		log.Printf("concierge ask error: %v", err)
		return askFallback
	}
	if strings.TrimSpace(text) == "" {
		return askEmpty
	}
	return text
}
