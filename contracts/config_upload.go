package contracts

type UploadConfig struct {
	Program   string
	Arguments []string
	Generator string
	Strict    bool
	Verbose   bool
}

// CrashDirectory is the sole positional argument, or "" when the argument count is wrong.
func (this UploadConfig) CrashDirectory() string {
	if len(this.Arguments) != 1 {
		return ""
	}
	return this.Arguments[0]
}

type PackagesConfig struct {
	Program   string
	Arguments []string
}
