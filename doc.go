// Package argtok classifies single command-line arguments and coerces their
// values.
//
// Classify turns one raw argv element into a Token: a positional argument,
// a --flag with an optional =value and an optional no- negation, or the
// bare -- sentinel that stops flag parsing. Typed coercions then resolve a
// token against a four-slot fallback Policy keyed by negation and value
// emptiness:
//  tok := argtok.Classify("--no-upload")
//  on, _ := argtok.Bool(tok) // false
//
// The caller owns the loop, the option set, and any multi-token grammar;
// the package sees one token at a time:
//  for i, raw := range argv {
//      tok := argtok.Classify(raw)
//      if tok.IsSentinel() {
//          rest = argv[i+1:]
//          break
//      }
//      switch tok.Key {
//      case "jobs":
//          jobs, err = argtok.Number(tok, "--jobs must have a value",
//              argtok.Policy[float64]{argtok.Enabled: 4})
//      case "verbose":
//          verbose, err = argtok.Bool(tok)
//      default:
//          err = argtok.UnknownOption(tok, "jobs", "verbose")
//      }
//      ...
//  }
//
// Failures are ArgumentError values carrying a message and an exit status.
// HandleErr and Exit map them to diagnostics and process termination; an
// error message exactly equal to the help text means "print it and exit 0".
package argtok
