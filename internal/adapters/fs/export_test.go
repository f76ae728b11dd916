package fs

// NewCheckerWithLookPath creates a Checker with a custom PATH lookup.
func NewCheckerWithLookPath(lookPath func(string) (string, error)) *Checker {
	return &Checker{lookPath: lookPath}
}
