package validator

// ObjectBuilder accumulates the tree of a keyed value. It is the owned
// accumulator a Validate method fills field by field.
type ObjectBuilder struct {
	renames RenameMap
	tree    *ObjectErrors
}

// ObjectOption configures an ObjectBuilder.
type ObjectOption func(*ObjectBuilder)

// WithRenames files field errors under external names.
func WithRenames(m RenameMap) ObjectOption {
	return func(b *ObjectBuilder) {
		b.renames = m
	}
}

// NewObject returns an empty builder.
func NewObject(opts ...ObjectOption) *ObjectBuilder {
	b := &ObjectBuilder{tree: NewObjectErrors()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Field files a field's tree under its external key. Empty trees leave no
// entry; repeated keys are merged.
func (b *ObjectBuilder) Field(name string, errs Errors) *ObjectBuilder {
	b.tree.SetProperty(b.renames.Key(name), errs)
	return b
}

// Errors appends failures about the value as a whole.
func (b *ObjectBuilder) Errors(errs ...Error) *ObjectBuilder {
	b.tree.Errors = append(b.tree.Errors, errs...)
	return b
}

// Check appends the result of struct-level rules.
func (b *ObjectBuilder) Check(errs VecErrors) *ObjectBuilder {
	return b.Errors(errs...)
}

// Result returns the accumulated tree, possibly empty.
func (b *ObjectBuilder) Result() Errors {
	return b.tree
}

// Err returns the tree as an error, or nil when nothing failed.
func (b *ObjectBuilder) Err() error {
	return Err(b.tree)
}
