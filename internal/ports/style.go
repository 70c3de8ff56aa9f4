package ports

// StyleContext is the shared presentation context that style sheets read
// color variables from. Only the theme applicator writes to it.
type StyleContext interface {
	SetProperty(name, value string)
}
