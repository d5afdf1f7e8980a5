package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	passwordvalidator "github.com/wagslane/go-password-validator"

	"github.com/talx-hub/tour-points/internal/model/location"
	"github.com/talx-hub/tour-points/internal/model/points"
)

type UserRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (r *UserRequest) IsValid() error {
	var invalidLoginErr error
	if r.Login == "" {
		invalidLoginErr = errors.New("login is empty")
	}

	const minEntropyBits = 50
	invalidPasswordErr := passwordvalidator.Validate(r.Password, minEntropyBits)
	// bcrypt only hashes the first 72 bytes
	const maxPasswordBytes = 72
	if len(r.Password) > maxPasswordBytes {
		invalidPasswordErr = fmt.Errorf("password is longer than %d bytes", maxPasswordBytes)
	}
	return errors.Join(invalidLoginErr, invalidPasswordErr)
}

type PurchaseRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	ProductName string `json:"product_name" validate:"required"`
	Points      int64  `json:"points" validate:"gt=0"`
}

type PostingRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	Reason      string `json:"reason" validate:"required,oneof=REVIEW_WRITE REVIEW_LIKE LOCATION_VERIFY PURCHASE REFUND ADMIN_ADJUST"`
	Description string `json:"description,omitempty"`
	RelatedID   string `json:"related_id,omitempty"`
	Amount      int64  `json:"amount" validate:"gt=0"`
}

type RewardRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	Event     string `json:"event" validate:"required"`
	RelatedID string `json:"related_id,omitempty"`
}

// VerifyLocationRequest uses pointers so that a missing coordinate is told
// apart from 0.
type VerifyLocationRequest struct {
	PlaceID  string   `json:"place_id" validate:"required"`
	UserLat  *float64 `json:"user_lat" validate:"required,gte=-90,lte=90"`
	UserLng  *float64 `json:"user_lng" validate:"required,gte=-180,lte=180"`
	PlaceLat *float64 `json:"place_lat" validate:"required,gte=-90,lte=90"`
	PlaceLng *float64 `json:"place_lng" validate:"required,gte=-180,lte=180"`
	RadiusKm *float64 `json:"radius_km,omitempty" validate:"omitempty,gt=0"`
}

type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

type EntryResponse struct {
	CreatedAt    time.Time `json:"created_at"`
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Reason       string    `json:"reason"`
	Description  string    `json:"description,omitempty"`
	RelatedID    string    `json:"related_id,omitempty"`
	Amount       int64     `json:"amount"`
	BalanceAfter int64     `json:"balance_after"`
}

func NewEntryResponse(e points.Entry) EntryResponse {
	return EntryResponse{
		CreatedAt:    e.CreatedAt,
		ID:           e.ID,
		Kind:         string(e.Kind),
		Reason:       string(e.Reason),
		Description:  e.Description,
		RelatedID:    e.RelatedID,
		Amount:       e.Amount,
		BalanceAfter: e.BalanceAfter,
	}
}

type LocationResponse struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	PlaceID   string    `json:"place_id"`
	UserLat   float64   `json:"user_lat"`
	UserLng   float64   `json:"user_lng"`
	PlaceLat  float64   `json:"place_lat"`
	PlaceLng  float64   `json:"place_lng"`
	DistanceM float64   `json:"distance_m"`
	RadiusM   float64   `json:"radius_m"`
	Verified  bool      `json:"verified"`
}

func NewLocationResponse(p location.Permission) LocationResponse {
	return LocationResponse{
		CreatedAt: p.CreatedAt,
		ID:        p.ID,
		PlaceID:   p.PlaceID,
		UserLat:   p.UserLat,
		UserLng:   p.UserLng,
		PlaceLat:  p.PlaceLat,
		PlaceLng:  p.PlaceLng,
		DistanceM: p.DistanceM,
		RadiusM:   p.RadiusM,
		Verified:  p.Verified,
	}
}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

type InsufficientFundsResponse struct {
	Error     string `json:"error"`
	Balance   int64  `json:"balance"`
	Requested int64  `json:"requested"`
	Shortfall int64  `json:"shortfall"`
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates s and, on failure, returns the failed fields keyed by
// their JSON names.
func (v *Validator) Struct(s any) (map[string]string, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, fmt.Errorf("failed to validate request: %w", err)
	}
	details := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		details[fe.Field()] = fmt.Sprintf("failed on '%s' validation", fe.Tag())
	}
	return details, err
}
