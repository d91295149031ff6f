package constants

const (
	APP_NAME = "Daily Thoughts"

	MIN_PASSWORD_LENGTH = 4
	POST_PREVIEW_LENGTH = 100
	MAX_IMAGE_BYTES     = 10 << 20

	// long-form date shown on cards and matched by search
	DATE_DISPLAY_FORMAT = "January 2, 2006"

	FALLBACK_QUOTE      = "The best way to predict the future is to create it."
	FALLBACK_REFLECTION = "Could not generate reflection. Please try again later."
)
