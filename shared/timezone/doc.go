// Package timezone keeps the application timezone used for stored timestamps and formatted responses.
//
// The location is set once at start-up from APP_TIMEZONE:
//
//	timezone.Load(cfg.App.Timezone)
//	now := timezone.Now()
//	formatted := timezone.Format(now, time.RFC3339)
//
// Until Load is called every helper works in UTC.
package timezone
