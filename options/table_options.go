package options

// TableOptions controls optional behaviour of the table builders.
type TableOptions struct {

	// VerifySpread recounts slot assignments against the frequency table
	// after spreading. Useful while debugging a coder integration.
	VerifySpread bool
}

func NewTableOptions(options *TableOptions) *TableOptions {

	opt := &TableOptions{}
	if options != nil {
		opt.VerifySpread = options.VerifySpread
	}
	return opt
}
