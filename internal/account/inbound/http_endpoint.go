package inbound

import (
	"github.com/shandysiswandi/accountly/internal/account/usecase"
	"github.com/shandysiswandi/accountly/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the account lifecycle workflows.
type HTTPEndpoint struct {
	uc uc
}

// AccountCreate registers a new account and emits the create event.
func (h *HTTPEndpoint) AccountCreate(r *router.Request) (any, error) {
	var req AccountCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.AccountCreate(r.Context(), usecase.AccountCreateInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return nil, err
	}

	return AccountCreateResponse{AccountID: resp.AccountID}, nil
}

// AccountUpdate changes profile fields on the authenticated account.
func (h *HTTPEndpoint) AccountUpdate(r *router.Request) (any, error) {
	var req AccountUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.AccountUpdate(r.Context(), usecase.AccountUpdateInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}); err != nil {
		return nil, err
	}

	return AccountUpdateResponse{}, nil
}

// AccountDelete requests deletion of an account. Admin only.
func (h *HTTPEndpoint) AccountDelete(r *router.Request) (any, error) {
	if err := h.uc.AccountDelete(r.Context(), usecase.AccountDeleteInput{
		AccountID: r.GetParam("id"),
	}); err != nil {
		return nil, err
	}

	return AccountDeleteResponse{}, nil
}

// AccountDisable disables an account. Owner or admin.
func (h *HTTPEndpoint) AccountDisable(r *router.Request) (any, error) {
	if err := h.uc.AccountDisable(r.Context(), usecase.AccountDisableInput{
		AccountID: r.GetParam("id"),
	}); err != nil {
		return nil, err
	}

	return AccountStatusResponse{}, nil
}

// AccountEnable re-enables a disabled account. Admin only.
func (h *HTTPEndpoint) AccountEnable(r *router.Request) (any, error) {
	if err := h.uc.AccountEnable(r.Context(), usecase.AccountEnableInput{
		AccountID: r.GetParam("id"),
	}); err != nil {
		return nil, err
	}

	return AccountStatusResponse{}, nil
}

// PasswordForgot requests a password-recovery code for an email.
func (h *HTTPEndpoint) PasswordForgot(r *router.Request) (any, error) {
	var req PasswordForgotRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordForgot(r.Context(), usecase.PasswordForgotInput{
		Email: req.Email,
	}); err != nil {
		return nil, err
	}

	return PasswordForgotResponse{}, nil
}

// PasswordReset verifies the current password and requests a reset code.
func (h *HTTPEndpoint) PasswordReset(r *router.Request) (any, error) {
	var req PasswordResetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordReset(r.Context(), usecase.PasswordResetInput{
		CurrentPassword: req.CurrentPassword,
	}); err != nil {
		return nil, err
	}

	return PasswordResetResponse{}, nil
}

// PasswordUpdate sets a new password using a one-shot token.
func (h *HTTPEndpoint) PasswordUpdate(r *router.Request) (any, error) {
	var req PasswordUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordUpdate(r.Context(), usecase.PasswordUpdateInput{
		NewPassword: req.NewPassword,
	}); err != nil {
		return nil, err
	}

	return PasswordUpdateResponse{}, nil
}

// EmailVerify validates an email verification code.
func (h *HTTPEndpoint) EmailVerify(r *router.Request) (any, error) {
	var req EmailVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.EmailVerify(r.Context(), usecase.EmailVerifyInput{
		Email: req.Email,
		OTP:   req.OTP,
	}); err != nil {
		return nil, err
	}

	return EmailVerifyResponse{}, nil
}

// PhoneVerify validates a phone verification code.
func (h *HTTPEndpoint) PhoneVerify(r *router.Request) (any, error) {
	var req PhoneVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PhoneVerify(r.Context(), usecase.PhoneVerifyInput{
		PhoneNumber: req.PhoneNumber,
		OTP:         req.OTP,
	}); err != nil {
		return nil, err
	}

	return PhoneVerifyResponse{}, nil
}

// PhoneReset starts a phone number change for the authenticated account.
func (h *HTTPEndpoint) PhoneReset(r *router.Request) (any, error) {
	var req PhoneResetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PhoneReset(r.Context(), usecase.PhoneResetInput{
		PhoneNumber: req.PhoneNumber,
	}); err != nil {
		return nil, err
	}

	return PhoneResetResponse{}, nil
}

// PhoneUpdate finishes a phone number change with the delivered code.
func (h *HTTPEndpoint) PhoneUpdate(r *router.Request) (any, error) {
	var req PhoneUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PhoneUpdate(r.Context(), usecase.PhoneUpdateInput{
		PhoneNumber: req.PhoneNumber,
		OTP:         req.OTP,
	}); err != nil {
		return nil, err
	}

	return PhoneUpdateResponse{}, nil
}
