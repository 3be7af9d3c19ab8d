package routes

import "fmt"

// ResolveErrorKind categorizes resolution errors.
type ResolveErrorKind string

const (
	// ErrorConflictingLayouts indicates two layout files at the same
	// directory and specificity rank. Always fatal.
	ErrorConflictingLayouts ResolveErrorKind = "CONFLICTING_LAYOUTS"

	// ErrorDuplicateRoute indicates two view files resolving to the
	// same route name and rank within one directory.
	ErrorDuplicateRoute ResolveErrorKind = "DUPLICATE_ROUTE"

	// ErrorInvalidRouteName indicates a leaf file named entirely after
	// a route group, e.g. "(a).tsx".
	ErrorInvalidRouteName ResolveErrorKind = "INVALID_ROUTE_NAME"

	// ErrorDuplicateGroupName indicates a name repeated inside one
	// array-group list, e.g. "(a,b,a)".
	ErrorDuplicateGroupName ResolveErrorKind = "DUPLICATE_GROUP_NAME"

	// ErrorUnexpectedPlatform indicates a platform suffix used while
	// platform extensions are disabled.
	ErrorUnexpectedPlatform ResolveErrorKind = "UNEXPECTED_PLATFORM_EXTENSION"

	// ErrorMissingFallback indicates platform variants without a
	// generic sibling file to fall back to.
	ErrorMissingFallback ResolveErrorKind = "MISSING_FALLBACK_ROUTE"
)

// ResolveError is a fatal resolution error. No partial tree is
// returned alongside one; the caller decides whether to surface, log,
// or abort.
type ResolveError struct {
	// Kind is the error category.
	Kind ResolveErrorKind

	// Message is the human-readable error message.
	Message string

	// Files are the file keys involved.
	Files []string

	// Dir is the owning directory, when the error is tied to one.
	Dir string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func errConflictingLayouts(existing, incoming, dir string, improved bool) error {
	msg := fmt.Sprintf("Multiple layout files match the directory %q.", displayDir(dir))
	if improved {
		msg = fmt.Sprintf("The layout files %q and %q conflict in %q. Remove or rename one of these files.",
			existing, incoming, displayDir(dir))
	}
	return &ResolveError{
		Kind:    ErrorConflictingLayouts,
		Message: msg,
		Files:   []string{existing, incoming},
		Dir:     dir,
	}
}

func errDuplicateRoute(existing, incoming, route, dir string, improved bool) error {
	msg := fmt.Sprintf("Multiple files match the route name %q.", "/"+route)
	if improved {
		msg = fmt.Sprintf("The route files %q and %q conflict on the route %q. Remove or rename one of these files.",
			existing, incoming, "/"+route)
	}
	return &ResolveError{
		Kind:    ErrorDuplicateRoute,
		Message: msg,
		Files:   []string{existing, incoming},
		Dir:     dir,
	}
}

func errGroupNamedRoute(key string) error {
	return &ResolveError{
		Kind:    ErrorInvalidRouteName,
		Message: fmt.Sprintf("Invalid route %q. Route files cannot be named after a route group.", key),
		Files:   []string{key},
	}
}

func errDuplicateGroupName(key, name string) error {
	return &ResolveError{
		Kind:    ErrorDuplicateGroupName,
		Message: fmt.Sprintf("Invalid route %q. The group list contains %q more than once.", key, name),
		Files:   []string{key},
	}
}

func errUnexpectedPlatform(key, platform string) error {
	return &ResolveError{
		Kind:    ErrorUnexpectedPlatform,
		Message: fmt.Sprintf("Invalid route %q. Platform extensions such as %q are not enabled.", key, "."+platform),
		Files:   []string{key},
	}
}

func errMissingFallback(key string) error {
	return &ResolveError{
		Kind:    ErrorMissingFallback,
		Message: fmt.Sprintf("The file %q does not have a fallback sibling file without a platform extension.", key),
		Files:   []string{key},
	}
}

// displayDir renders the root directory as "/" instead of "".
func displayDir(dir string) string {
	if dir == "" {
		return "/"
	}
	return dir
}
