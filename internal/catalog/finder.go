package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"phonekart/internal/product"
)

type Budget string

const (
	BudgetAny  Budget = "any"
	BudgetLow  Budget = "low"
	BudgetMid  Budget = "mid"
	BudgetHigh Budget = "high"
)

type UseCase string

const (
	UseCaseAll     UseCase = "all"
	UseCaseGaming  UseCase = "gaming"
	UseCaseCamera  UseCase = "camera"
	UseCaseBattery UseCase = "battery"
)

const (
	budgetLowCeil   = 15000
	budgetHighFloor = 30000

	// AnyBrand disables the brand preference.
	AnyBrand = "Any"

	recommendLimit = 3
)

// Preferences are the three answers of the phone finder.
type Preferences struct {
	Budget  Budget
	UseCase UseCase
	Brand   string
}

func ParseBudget(s string) (Budget, error) {
	switch b := Budget(strings.ToLower(strings.TrimSpace(s))); b {
	case BudgetLow, BudgetMid, BudgetHigh, BudgetAny:
		return b, nil
	case "":
		return BudgetAny, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBudget, s)
}

func ParseUseCase(s string) (UseCase, error) {
	switch u := UseCase(strings.ToLower(strings.TrimSpace(s))); u {
	case UseCaseAll, UseCaseGaming, UseCaseCamera, UseCaseBattery:
		return u, nil
	case "":
		return UseCaseAll, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUseCase, s)
}

func (b Budget) matches(price float64) bool {
	switch b {
	case BudgetLow:
		return price < budgetLowCeil
	case BudgetMid:
		return price >= budgetLowCeil && price <= budgetHighFloor
	case BudgetHigh:
		return price > budgetHighFloor
	}
	return true
}

func brandMatches(want, brand string) bool {
	if want == "" || strings.EqualFold(want, AnyBrand) {
		return true
	}
	return strings.EqualFold(want, brand)
}

// Recommend returns up to three phones for the preferences. Gaming favours
// RAM, camera favours price, battery favours capacity; ties keep catalog order.
func Recommend(products []product.Product, prefs Preferences) []product.Product {
	var matches []product.Product
	for _, p := range products {
		if prefs.Budget.matches(p.Price) && brandMatches(prefs.Brand, p.Brand) {
			matches = append(matches, p)
		}
	}

	switch prefs.UseCase {
	case UseCaseGaming:
		sort.SliceStable(matches, func(i, j int) bool { return matches[i].RAM > matches[j].RAM })
	case UseCaseCamera:
		sort.SliceStable(matches, func(i, j int) bool { return matches[i].Price > matches[j].Price })
	case UseCaseBattery:
		sort.SliceStable(matches, func(i, j int) bool {
			return BatteryCapacity(matches[i].Battery) > BatteryCapacity(matches[j].Battery)
		})
	}

	if len(matches) > recommendLimit {
		matches = matches[:recommendLimit]
	}
	return matches
}

// BatteryCapacity reads the first number of a descriptor such as
// "5,000 mAh"; 0 when there is none.
func BatteryCapacity(desc string) int {
	var digits strings.Builder
	for _, r := range desc {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == ',' && digits.Len() > 0:
		case digits.Len() > 0:
			n, _ := strconv.Atoi(digits.String())
			return n
		}
	}
	n, _ := strconv.Atoi(digits.String())
	return n
}
