// Package model contains the shared data model: the check-in API
// messages in their v1 and v2 shapes, the interpreter script, and the
// interfaces (e.g., [Logger], [HTTPClient]) shared by other packages.
package model
