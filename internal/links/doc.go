package links

// Package links turns free-form pasted text, files and environment
// fallbacks into an ordered, de-duplicated list of HTTP(S) URLs.
