package invocation

// FilterArgs returns args without the flags that ask the compiler to emit
// dependency files: -MD and -MMD standalone, and -MF together with the
// path argument that follows it. The recorded command must not request
// side effects the orchestrator never asked for; the real compilation
// still runs with the original arguments.
//
// Argument 0 is the compiler path: it is never matched against the
// denylist and always survives. Surviving arguments keep their original
// order. The input slice is not modified.
func FilterArgs(args []string) []string {
	filtered := make([]string, 0, len(args))
	if len(args) == 0 {
		return filtered
	}
	filtered = append(filtered, args[0])
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-MD", "-MMD":
			// dropped standalone
		case "-MF":
			i++ // the dependency-file path is dropped with its flag
		default:
			filtered = append(filtered, args[i])
		}
	}
	return filtered
}
