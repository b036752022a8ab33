// Package gm (stands for geometry math) provides the few geometry primitives
// the ui needs: a 2d vector Vec, an axis aligned Rect and angles in degrees.
package gm
