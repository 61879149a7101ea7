package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Notification settings. Preview mode logs emails instead of sending;
	// auto-notify fires a notification after every status change.
	EmailAutoNotify  bool
	EmailPreviewMode bool
	EmailFrom        string
	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string

	// JobsEnabled toggles the background cron jobs, off in one-shot tooling.
	JobsEnabled bool
}
