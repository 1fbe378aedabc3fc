// Package byteranges parses HTTP Range header values into validated
// byte windows against a known resource size.
package byteranges
