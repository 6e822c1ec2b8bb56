package catalog

// Document is the configuration layout of an enum catalog.
//
//	enums:
//	  - name: color
//	    hash_index: false
//	    values:
//	      - { label: RED, value: 1, meta: warm }
//	      - { label: BLUE, value: 4 }
type Document struct {
	Enums []EnumSpec `mapstructure:"enums" yaml:"enums"`
}

// EnumSpec declares one enum type.
type EnumSpec struct {
	Name string `mapstructure:"name" yaml:"name"`
	// HashIndex attaches a hash index extension to the built descriptor.
	HashIndex bool        `mapstructure:"hash_index" yaml:"hash_index"`
	Values    []ValueSpec `mapstructure:"values" yaml:"values"`
}

// ValueSpec declares one entry of an enum.
type ValueSpec struct {
	Label string `mapstructure:"label" yaml:"label"`
	Value int64  `mapstructure:"value" yaml:"value"`
	// Meta is stored as the entry's metadata handle when set.
	Meta any `mapstructure:"meta" yaml:"meta"`
}
