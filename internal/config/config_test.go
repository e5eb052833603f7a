package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("POSTGRES_USER", "orders")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("PAYMENT_KEY_ID", "rzp_test_key")
	t.Setenv("PAYMENT_KEY_SECRET", "key-secret")
	t.Setenv("PAYMENT_WEBHOOK_SECRET", "webhook-secret")
	t.Setenv("ADMIN_API_TOKEN", "admin-token-0123456789")
	t.Setenv("CUSTOMER_TOKEN_SECRET", "customer-secret-0123456789")
}

func TestNew_Defaults(t *testing.T) {
	setRequired(t)

	c := New()
	require.NoError(t, c.Validate())

	assert.Equal(t, "development", c.Env)
	assert.Equal(t, "INR", c.Payment.Currency)
	assert.Equal(t, "X-Razorpay-Signature", c.Payment.SignatureHeader)
	assert.Equal(t, int64(10001), c.Checkout.OrderNumberFloor)
	assert.Equal(t, "ORD-", c.Checkout.FallbackPrefix)
	assert.Equal(t, 1000.0, c.Checkout.FreeShippingAbove)
	assert.Equal(t, 100.0, c.Checkout.ShippingFee)
	assert.Equal(t, 24*time.Hour, c.Sweeper.PendingTTL)
	assert.True(t, c.Postgres.Migrate)
}

func TestNew_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("SWEEPER_INTERVAL", "0s")
	t.Setenv("POSTGRES_MIGRATE", "false")
	t.Setenv("CHECKOUT_SHIPPING_FEE", "not-a-number")

	c := New()
	require.NoError(t, c.Validate())

	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.Kafka.Brokers)
	assert.Zero(t, c.Sweeper.Interval)
	assert.False(t, c.Postgres.Migrate)
	assert.Equal(t, 100.0, c.Checkout.ShippingFee)
}

func TestValidate_MissingSecrets(t *testing.T) {
	setRequired(t)
	t.Setenv("PAYMENT_WEBHOOK_SECRET", "")
	t.Setenv("ADMIN_API_TOKEN", "short")

	assert.Error(t, New().Validate())
}

func TestValidate_SweeperPendingTTL(t *testing.T) {
	testCases := []struct {
		name    string
		ttl     string
		wantErr bool
	}{
		{name: "positive", ttl: "30m"},
		{name: "zero", ttl: "0s", wantErr: true},
		{name: "negative", ttl: "-1h", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv("SWEEPER_PENDING_TTL", tc.ttl)

			err := New().Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
