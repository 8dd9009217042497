package manager

// Animations defines the collaborator interface the pet surface drives.
// All operations are synchronous and return either a value or one of the
// named failure kinds in internal/model.
type Animations interface {
	OrderedList() []string
	Default() (string, error)
	SwitchToNext(current string) (string, error)
	RequestDelete(current string) (DeletePlan, error)
	CommitDelete(plan DeletePlan) error
	SetCustomOrder(paths []string) error
	ReorderByIndexes(oneBased []int) error
	ImportAndActivate(sourcePath string) (string, error)
}
