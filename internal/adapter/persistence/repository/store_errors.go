package repository

import (
	"context"
	"errors"
	"fmt"
	"net"

	"gadget_garage/internal/usecase/interfaces"

	"github.com/aws/smithy-go"
)

// classifyStoreError maps a DynamoDB/transport failure onto the store sentinels.
// Unknown failures are returned unchanged.
func classifyStoreError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %v", op, interfaces.ErrStoreUnavailable, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDeniedException":
			return fmt.Errorf("%s: %w: %v", op, interfaces.ErrStorePermissionDenied, err)
		case "UnrecognizedClientException", "InvalidSignatureException",
			"MissingAuthenticationTokenException", "ExpiredTokenException":
			return fmt.Errorf("%s: %w: %v", op, interfaces.ErrStoreUnauthenticated, err)
		case "ThrottlingException", "ProvisionedThroughputExceededException",
			"RequestLimitExceeded", "ServiceUnavailable", "InternalServerError":
			return fmt.Errorf("%s: %w: %v", op, interfaces.ErrStoreUnavailable, err)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%s: %w: %v", op, interfaces.ErrStoreUnavailable, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
