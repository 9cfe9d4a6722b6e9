package waymark

// Version is the current release of the waymark module.
var Version = "0.1.0"
