package kafka

import (
	"errors"

	"github.com/IBM/sarama"

	"service-dispatch/internal/retry"
)

// classify marks producer errors that a resend cannot fix as permanent.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sarama.ErrMessageSizeTooLarge),
		errors.Is(err, sarama.ErrInvalidMessage),
		errors.Is(err, sarama.ErrInvalidMessageSize),
		errors.Is(err, sarama.ErrTopicAuthorizationFailed):
		return retry.Permanent(err)
	default:
		return err
	}
}
