// Package picker presents candidate lists to an external interactive chooser
// and reports the user's selection and intent. The rofi implementation maps
// the chooser's exit-code convention onto the two-valued Mode so callers
// never see transport details.
package picker
