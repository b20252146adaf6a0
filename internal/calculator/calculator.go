// Package calculator - рассрочка без процентов: остаток делится на равные платежи.
package calculator

import (
	"errors"
	"math"
)

var (
	ErrInvalidPrice       = errors.New("price must be positive")
	ErrInvalidDownPayment = errors.New("down payment must be within 0..100 percent")
	ErrInvalidMonths      = errors.New("months must be positive")
)

// Plan - параметры рассрочки
type Plan struct {
	Price              float64 `json:"price"`
	DownPaymentPercent float64 `json:"down_payment_percent"`
	Months             int     `json:"months"`
}

// Schedule - результат расчёта
type Schedule struct {
	DownPayment    float64 `json:"down_payment"`
	Remaining      float64 `json:"remaining"`
	MonthlyPayment float64 `json:"monthly_payment"`
	// LastPayment добирает копейки округления, чтобы сумма сошлась с ценой
	LastPayment float64 `json:"last_payment"`
	Months      int     `json:"months"`
	Total       float64 `json:"total"`
}

// Calculate делит остаток после первоначального взноса на равные месячные платежи
func Calculate(p Plan) (Schedule, error) {
	if p.Price <= 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		return Schedule{}, ErrInvalidPrice
	}
	if p.DownPaymentPercent < 0 || p.DownPaymentPercent > 100 || math.IsNaN(p.DownPaymentPercent) {
		return Schedule{}, ErrInvalidDownPayment
	}
	if p.Months <= 0 {
		return Schedule{}, ErrInvalidMonths
	}

	down := roundCents(p.Price * p.DownPaymentPercent / 100)
	remaining := roundCents(p.Price - down)
	monthly := roundCents(remaining / float64(p.Months))
	last := roundCents(remaining - monthly*float64(p.Months-1))

	return Schedule{
		DownPayment:    down,
		Remaining:      remaining,
		MonthlyPayment: monthly,
		LastPayment:    last,
		Months:         p.Months,
		Total:          roundCents(down + remaining),
	}, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
