package internal

// Version is the i18nsync release version
const Version = "0.1.0"
