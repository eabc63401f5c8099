package internal

// Version is the current vocabot release version
const Version = "0.1.0"
