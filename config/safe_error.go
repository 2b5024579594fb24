package config

// SafeErrorMessage hides internal error details from clients in
// release mode; in debug mode (or before config is loaded) the real
// error is returned to ease development.
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
