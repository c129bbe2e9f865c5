package dfaunion

// Version is the current release of the dfa-union toolkit.
const Version = "0.4.0"
