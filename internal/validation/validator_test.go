// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package validation

import (
	"strings"
	"testing"
)

type titleRequest struct {
	AnimeName string `json:"animeName" validate:"required,max=20,nocontrol"`
	Genre     string `json:"genre" validate:"max=10,nocontrol"`
}

type searchQuery struct {
	Query string `query:"q" validate:"max=5"`
	Limit int    `query:"limit" validate:"gte=0,lte=20"`
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator() returned different instances")
	}
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{"valid", &titleRequest{AnimeName: "Naruto", Genre: "action"}, "", "", ""},
		{"genre may be empty", &titleRequest{AnimeName: "Naruto"}, "", "", ""},
		{"tab allowed", &titleRequest{AnimeName: "Naruto\tShippuden"}, "", "", ""},
		{"missing name", &titleRequest{}, "animeName", "required", "animeName is required"},
		{"name too long", &titleRequest{AnimeName: strings.Repeat("a", 21)}, "animeName", "max", "animeName must be at most 20 characters"},
		{"control character", &titleRequest{AnimeName: "Naru\x00to"}, "animeName", "nocontrol", "animeName must not contain control characters"},
		{"newline in genre", &titleRequest{AnimeName: "Naruto", Genre: "action\n"}, "genre", "nocontrol", ""},
		{"query tag name", &searchQuery{Query: "toolong"}, "q", "max", "q must be at most 5 characters"},
		{"limit bounds", &searchQuery{Limit: 21}, "limit", "lte", "limit must be less than or equal to 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			got := verr.Errors()[0]
			if got.Field() != tt.wantField || got.Tag() != tt.wantTag {
				t.Errorf("error = %s/%s, want %s/%s", got.Field(), got.Tag(), tt.wantField, tt.wantTag)
			}
			if tt.wantMsg != "" && got.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", got.Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	t.Run("single error", func(t *testing.T) {
		t.Parallel()
		apiErr := ValidateStruct(&titleRequest{}).ToAPIError()
		if apiErr.Code != "VALIDATION_ERROR" {
			t.Errorf("Code = %q", apiErr.Code)
		}
		if apiErr.Message != "animeName is required" {
			t.Errorf("Message = %q", apiErr.Message)
		}
		if apiErr.Details["field"] != "animeName" {
			t.Errorf("Details = %v", apiErr.Details)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		t.Parallel()
		verr := ValidateStruct(&titleRequest{Genre: strings.Repeat("g", 11)})
		if len(verr.Errors()) != 2 {
			t.Fatalf("len(Errors()) = %d, want 2", len(verr.Errors()))
		}
		apiErr := verr.ToAPIError()
		if !strings.Contains(apiErr.Message, "animeName is required") || !strings.Contains(apiErr.Message, "genre must be at most 10 characters") {
			t.Errorf("Message = %q", apiErr.Message)
		}
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 2 {
			t.Errorf("Details[fields] = %v", apiErr.Details["fields"])
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Code != "VALIDATION_ERROR" || apiErr.Message != "Validation failed" {
			t.Errorf("ToAPIError() = %+v", apiErr)
		}
	})
}
