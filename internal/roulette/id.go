package roulette

import "github.com/google/uuid"

// IDGenerator Генератор ID экземпляров предметов
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.New().String()
}

func DefaultIDGenerator() IDGenerator { return uuidGenerator{} }
