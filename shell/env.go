package shell

import "os"

type Environment struct{}

func NewEnvironment() *Environment {
	return &Environment{}
}

func (this *Environment) LookupEnv(key string) (value string, set bool) {
	return os.LookupEnv(key)
}

// Chdir changes the working directory of the whole process.
func (this *Environment) Chdir(directory string) error {
	return os.Chdir(directory)
}
