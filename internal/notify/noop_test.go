package notify_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sellermate/negotiator/internal/notify"
	"github.com/sellermate/negotiator/pkg/logger"
)

func TestNoOpNotifier(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n := notify.NewNoOpNotifier(logger.NewWithWriter(&buf, "debug", "text"))

	require.NoError(t, n.NotifyReview(context.Background(), testReview()))
	require.Contains(t, buf.String(), "offer-1")
}
