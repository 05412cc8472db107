package usecase

// Export internals for white-box tests.
var SkipReason = skipReason
