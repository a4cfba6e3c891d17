package pluralize

// Version is the current release of the oh-pluralize toolkit.
const Version = "0.2.0"
