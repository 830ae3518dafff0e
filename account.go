package harvest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// WhoAmI describes the authenticated user and their account. It is the one
// response carrying two envelopes side by side:
// {"user": {...}, "company": {...}}.
type WhoAmI struct {
	User    AccountUser
	Company Company
}

// AccountUser is the user half of the who_am_i response.
type AccountUser struct {
	ID                 int64   `json:"id" harvest:"required"`
	Email              string  `json:"email" harvest:"required"`
	FirstName          *string `json:"first_name,omitempty"`
	LastName           *string `json:"last_name,omitempty"`
	Admin              *bool   `json:"admin,omitempty"`
	AvatarURL          *string `json:"avatar_url,omitempty"`
	TimestampTimers    *bool   `json:"timestamp_timers,omitempty"`
	Timezone           *string `json:"timezone,omitempty"`
	TimezoneIdentifier *string `json:"timezone_identifier,omitempty"`
	TimezoneUTCOffset  *int    `json:"timezone_utc_offset,omitempty"`
}

// Company is the account half of the who_am_i response.
type Company struct {
	BaseURI            string  `json:"base_uri" harvest:"required"`
	FullDomain         string  `json:"full_domain" harvest:"required"`
	Name               string  `json:"name" harvest:"required"`
	Active             *bool   `json:"active,omitempty"`
	WeekStartDay       *string `json:"week_start_day,omitempty"`
	TimeFormat         *string `json:"time_format,omitempty"`
	Clock              *string `json:"clock,omitempty"`
	DecimalSymbol      *string `json:"decimal_symbol,omitempty"`
	ThousandsSeparator *string `json:"thousands_separator,omitempty"`
	ColorScheme        *string `json:"color_scheme,omitempty"`
}

// WhoAmI fetches the authenticated user and account details.
func (a *API) WhoAmI(ctx context.Context) (WhoAmI, error) {
	var me WhoAmI
	req, err := a.NewRequest(ctx, http.MethodGet, "/account/who_am_i", nil, nil)
	if err != nil {
		return me, err
	}
	data, err := a.do(req)
	if err != nil {
		return me, err
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(data, &env); err != nil {
		return me, fmt.Errorf("decoding who_am_i: %w", err)
	}
	userRaw, ok := env["user"]
	if !ok {
		return me, &DecodeError{Resource: "user"}
	}
	companyRaw, ok := env["company"]
	if !ok {
		return me, &DecodeError{Resource: "company"}
	}
	if me.User, err = decodeResource[AccountUser]("user", userRaw); err != nil {
		return me, err
	}
	if me.Company, err = decodeResource[Company]("company", companyRaw); err != nil {
		return me, err
	}
	return me, nil
}
