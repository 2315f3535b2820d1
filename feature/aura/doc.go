// Package aura loads the aura definition document and serves it under /auras.
package aura
