// Parses flags and configures logging for the wheelforge tool.
//
// The tool accepts the following flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable verbose output.
//	-d, --debug     Enable debug output.
//
// Flags override build-time defaults set via linker flags. After parsing, the
// global logger is reconfigured to reflect the final level and verbosity
// before the selected command runs. SIGINT and SIGTERM cancel the command
// context, which kills any in-flight container subprocess without cleaning
// up artifacts already written.
package cli
