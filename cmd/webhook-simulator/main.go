// Command webhook-simulator sends signed payment provider events to a running
// service, for local testing of reconciliation without the real provider.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/payment"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app := &cli.App{
		Name:  "webhook-simulator",
		Usage: "send signed payment events to the orders service",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Value: "http://localhost:8080/webhooks/payment", Usage: "webhook endpoint"},
			&cli.StringFlag{Name: "secret", EnvVars: []string{"PAYMENT_WEBHOOK_SECRET"}, Required: true, Usage: "webhook signing secret"},
			&cli.StringFlag{Name: "header", Value: "X-Razorpay-Signature", EnvVars: []string{"PAYMENT_SIGNATURE_HEADER"}},
			&cli.StringFlag{Name: "order", Usage: "order id put into notes.payloadOrderId"},
			&cli.StringFlag{Name: "intent", Usage: "provider intent id of the order"},
			&cli.Int64Flag{Name: "amount", Value: 30000, Usage: "amount in minor units"},
			&cli.StringFlag{Name: "currency", Value: "INR"},
			&cli.IntFlag{Name: "repeat", Value: 1, Usage: "deliver the same event N times"},
			&cli.BoolFlag{Name: "tamper", Usage: "alter the body after signing"},
		},
		Commands: []*cli.Command{
			eventCommand(logger, "authorized", payment.EventPaymentAuthorized),
			eventCommand(logger, "captured", payment.EventPaymentCaptured),
			eventCommand(logger, "failed", payment.EventPaymentFailed),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("simulator failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func eventCommand(logger *slog.Logger, name, event string) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: "send a " + event + " event",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "code", Value: "BAD_REQUEST_ERROR", Usage: "error code for failed events"},
			&cli.StringFlag{Name: "description", Value: "Payment declined by bank", Usage: "error description for failed events"},
		},
		Action: func(c *cli.Context) error {
			body, err := buildEvent(c, event)
			if err != nil {
				return err
			}
			signature := payment.Sign(c.String("secret"), body)
			if c.Bool("tamper") {
				body = bytes.Replace(body, []byte(`"amount":`), []byte(`"amount":1`), 1)
			}

			client := &http.Client{Timeout: 10 * time.Second}
			for i := range c.Int("repeat") {
				status, resp, err := deliver(client, c.String("url"), c.String("header"), signature, body)
				if err != nil {
					return fmt.Errorf("delivery %d: %w", i+1, err)
				}
				logger.Info("event delivered",
					slog.String("event", event),
					slog.Int("attempt", i+1),
					slog.Int("status", status),
					slog.String("response", resp),
				)
			}
			return nil
		},
	}
}

func buildEvent(c *cli.Context, event string) ([]byte, error) {
	entity := payment.PaymentEntity{
		ID:       "pay_" + uuid.NewString()[:14],
		OrderID:  c.String("intent"),
		Amount:   c.Int64("amount"),
		Currency: c.String("currency"),
		Method:   "card",
		Notes:    payment.Notes{},
	}
	if order := c.String("order"); order != "" {
		entity.Notes[payment.NoteOrderID] = order
	}

	switch event {
	case payment.EventPaymentAuthorized:
		entity.Status = "authorized"
	case payment.EventPaymentCaptured:
		entity.Status = "captured"
		entity.Fee = entity.Amount * 2 / 100
		entity.Tax = entity.Fee * 18 / 100
	case payment.EventPaymentFailed:
		entity.Status = "failed"
		entity.ErrorCode = c.String("code")
		entity.ErrorDescription = c.String("description")
	}

	return json.Marshal(payment.Event{
		Event:   event,
		Payload: payment.Payload{Payment: &payment.PaymentWrapper{Entity: entity}},
	})
}

func deliver(client *http.Client, url, header, signature string, body []byte) (int, string, error) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(header, signature)

	resp, err := client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", err
	}
	return resp.StatusCode, string(bytes.TrimSpace(data)), nil
}
