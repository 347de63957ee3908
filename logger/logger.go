package logger

import (
	"log"
	"os"
)

// ProgressLogger logs the main steps of a restyle pass.
var ProgressLogger = log.New(os.Stdout, "cascade.progress: ", log.LstdFlags)

// WarningLogger emits a warning for each non fatal error, like unsupported CSS
// properties, malformed declarations or unknown selector parts.
var WarningLogger = log.New(os.Stdout, "cascade.warning: ", log.Lmsgprefix)
