// Package utftype holds definitions shared by the container packages.
package utftype
