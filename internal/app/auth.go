package app

import (
	cryptorand "crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/eventura/booking-api/api"
	"github.com/eventura/booking-api/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const otpTTL = 5 * time.Minute

// RequestOTP issues a fresh one-time code for the mobile number. Only a
// bcrypt hash of the code is stored; re-requesting replaces the previous
// code and restarts the expiry window.
func (app *Application) RequestOTP(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.RequestOTPRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	code, err := generateOTP()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.redis.Set(r.Context(), otpKey(input.Mobile), hash, otpTTL).Err()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if app.config.env == "dev" {
		// there is no SMS gateway in dev
		logger.Info("otp issued", "mobile", input.Mobile, "code", code)
	}

	resp := api.RequestOTPResponse{
		Ok:      true,
		Message: "OTP sent to your mobile number",
	}

	err = app.writeJSON(w, http.StatusAccepted, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// VerifyOTP checks the submitted code and logs the user in. The code is
// single use; a successful check deletes it before the session is upgraded.
func (app *Application) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.VerifyOTPRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	hash, err := app.redis.Get(r.Context(), otpKey(input.Mobile)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.Warn("otp verification without an active code")
			app.badRequestResponse(w, r, domain.ErrOTPNotRequested)
		} else {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = bcrypt.CompareHashAndPassword(hash, []byte(input.Code))
	if err != nil {
		logger.Warn("otp verification failed due to wrong code")
		app.errorResponse(w, r, http.StatusUnauthorized, domain.ErrOTPMismatch.Error())
		return
	}

	app.redis.Del(r.Context(), otpKey(input.Mobile))

	user, err := app.userRepo.UpsertByMobile(r.Context(), input.Mobile)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	oldSessionId := app.sessionManager.Token(r.Context())

	// To help prevent session fixation attacks we should renew the session token after any privilege level change.
	// https://github.com/OWASP/CheatSheetSeries/blob/master/cheatsheets/Session_Management_Cheat_Sheet.md#renew-the-session-id-after-any-privilege-level-change
	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	newSessionId := app.sessionManager.Token(r.Context())
	err = app.migrateSessionData(r.Context(), oldSessionId, newSessionId)
	if err != nil {
		logger.Error(
			"failed to migrate session data",
			"error", err,
			"oldSessionId", oldSessionId,
			"newSessionId", newSessionId,
		)
	}

	app.sessionManager.Put(r.Context(), SessionKeyMobile.String(), user.Mobile)

	resp := api.VerifyOTPResponse{
		Ok:   true,
		User: api.UserSummary{Mobile: user.Mobile},
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) Logout(w http.ResponseWriter, r *http.Request) {
	mobile := app.sessionManager.GetString(r.Context(), SessionKeyMobile.String())
	if mobile == "" {
		app.notFoundResponse(w, r)
		return
	}

	app.sessionManager.Destroy(r.Context())

	w.WriteHeader(http.StatusNoContent)
}

func generateOTP() (string, error) {
	n, err := cryptorand.Int(cryptorand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
