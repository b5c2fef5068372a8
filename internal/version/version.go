package version

// Version is the running service version reported by the getVersion command.
const Version = "0.1.0"
