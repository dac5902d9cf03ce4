package entities

import (
	"regexp"
)

// SuspensePatchMarker is present in next/dist/client/index.js once the
// React Suspense fix has been injected.
const SuspensePatchMarker = `err.toString().includes("DYNAMIC_SERVER_USAGE")`

// suspenseErrorFilter is true for the hydration errors that React raises
// for streamed Suspense boundaries and that must not reach the console.
const suspenseErrorFilter = `(` + SuspensePatchMarker +
	` || err.toString().includes("could not finish this Suspense boundary")` +
	` || err.toString().includes("Minified React error #419"))`

var (
	reactDOMHydrateRoot     = regexp.MustCompile(`ReactDOM\.hydrateRoot\(.*?\);`)
	clientHydrateRoot       = regexp.MustCompile(`_client.default\.hydrateRoot\(.*?\);`)
	onRecoverableErrorCamel = regexp.MustCompile(`(?m)_onRecoverableError\.default$`)
	onRecoverableErrorLower = regexp.MustCompile(`(?m)_onrecoverableerror\.default$`)
)

// NewSuspensePatchRules returns the Next.js rule table. Ranges must not
// overlap; the order is the priority order.
func NewSuspensePatchRules() PatchRules {
	return PatchRules{
		NewMajorRule("next-12-hydrate-root", 12, SuspensePatchMarker, PatchReactDOMHydrateRoot),
		NewConstraintRule("next-13.0-hydrate-root", "13 - 13.0.6", SuspensePatchMarker, PatchClientHydrateRoot),
		NewConstraintRule("next-13.1-on-recoverable-error", "13.1 - 13.3.0", SuspensePatchMarker, PatchOnRecoverableError),
		NewConstraintRule("next-13.3-on-recoverable-error", ">=13.3.1", SuspensePatchMarker, PatchOnRecoverableErrorLower),
	}
}

// PatchReactDOMHydrateRoot passes an onRecoverableError option to the first
// ReactDOM.hydrateRoot call (Next.js 12).
func PatchReactDOMHydrateRoot(content string) string {
	return replaceFirst(reactDOMHydrateRoot, content,
		`ReactDOM.hydrateRoot(domEl, reactEl, {onRecoverableError: (err) => `+
			suspenseErrorFilter+` ? null : console.error(err)});`)
}

// PatchClientHydrateRoot is the Next.js 13.0.x variant of
// PatchReactDOMHydrateRoot, where react-dom/client is imported as _client.
func PatchClientHydrateRoot(content string) string {
	return replaceFirst(clientHydrateRoot, content,
		`_client.default.hydrateRoot(domEl, reactEl, {onRecoverableError: (err) => `+
			suspenseErrorFilter+` ? null : console.error(err)});`)
}

// PatchOnRecoverableError wraps every trailing reference to the bundled
// on-recoverable-error handler (Next.js 13.1 to 13.3.0).
func PatchOnRecoverableError(content string) string {
	return onRecoverableErrorCamel.ReplaceAllLiteralString(content,
		`(err) => `+suspenseErrorFilter+` ? null : _onRecoverableError.default(err)`)
}

// PatchOnRecoverableErrorLower handles the lower-cased module binding used
// from Next.js 13.3.1 on.
func PatchOnRecoverableErrorLower(content string) string {
	return onRecoverableErrorLower.ReplaceAllLiteralString(content,
		`(err) => `+suspenseErrorFilter+` ? null : _onrecoverableerror.default(err)`)
}

func replaceFirst(pattern *regexp.Regexp, content, replacement string) string {
	loc := pattern.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return content[:loc[0]] + replacement + content[loc[1]:]
}
