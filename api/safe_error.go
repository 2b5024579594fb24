package api

import (
	"chauffeur/config"
)

// SafeErrorMessage hides internal error details from clients in
// production, to avoid leaking information.
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
