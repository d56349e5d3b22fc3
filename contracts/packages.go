package contracts

type PackageResolver interface {
	Resolve(path string) (name string, found bool)
}
