package testutil

// FixedBuildToken is a build token source that always yields itself.
//
// The driver stamps every log line of one run with a single token; tests
// pin the token so that log output stays reproducible.
type FixedBuildToken string

// Generate returns the token.
func (t FixedBuildToken) Generate() string {
	return string(t)
}
