package lockout

// Record tracks consecutive failed login attempts for one username. The
// username key is normalized to lower case before it reaches a repository.
// LastAttemptUnix is the unix-seconds timestamp of the most recent failure;
// storing it as an integer keeps the window arithmetic identical across
// storage engines.
type Record struct {
	Username        string
	AttemptCount    int
	LastAttemptUnix int64
}
