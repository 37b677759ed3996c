package httpadapter

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5/middleware"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

// The gateway retries a notification until it receives this exact body.
const gatewayAck = "TRUE"

// handlePaymentNotification receives form-encoded gateway notifications.
// Applied and already processed notifications are acknowledged with
// "TRUE". Rejected ones get "FALSE - <reason>": 400 when the payload is
// malformed or unsigned, 404 for an unknown investment and 500 when the
// ledger is inconsistent.
func (h *Handler) handlePaymentNotification(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(r.Context(), "malformed payment notification", slog.Any("error", err))
		replyGateway(w, http.StatusBadRequest, "malformed notification")
		return
	}
	n := notificationFromForm(r.PostForm)

	res, err := h.svc.Reconciliation.ApplyGatewayNotification(r.Context(), n)
	if err != nil {
		status, reason := notificationFailure(err)
		attrs := []any{
			slog.String("tr_id", n.TransactionID),
			slog.String("tr_crc", n.CRC),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		}
		if status >= http.StatusInternalServerError {
			h.logger.ErrorContext(r.Context(), "payment notification failed", attrs...)
		} else {
			h.logger.WarnContext(r.Context(), "payment notification rejected", attrs...)
		}
		replyGateway(w, status, "FALSE - "+reason)
		return
	}

	h.logger.InfoContext(r.Context(), "payment notification handled",
		slog.String("tr_id", n.TransactionID),
		slog.String("investment_id", res.InvestmentID.String()),
		slog.String("outcome", string(res.Outcome)))
	replyGateway(w, http.StatusOK, gatewayAck)
}

func notificationFromForm(form url.Values) port.GatewayNotification {
	return port.GatewayNotification{
		MerchantID:    form.Get("id"),
		TransactionID: form.Get("tr_id"),
		Date:          form.Get("tr_date"),
		CRC:           form.Get("tr_crc"),
		Amount:        form.Get("tr_amount"),
		Paid:          form.Get("tr_paid"),
		Description:   form.Get("tr_desc"),
		Status:        form.Get("tr_status"),
		Error:         form.Get("tr_error"),
		Email:         form.Get("tr_email"),
		Currency:      form.Get("tr_currency"),
		Signature:     form.Get("md5sum"),
	}
}

func notificationFailure(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidSignature):
		return http.StatusBadRequest, "invalid signature"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "malformed notification"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "unknown investment"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func replyGateway(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
