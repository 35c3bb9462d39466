// Package config loads run descriptions written in HCL. A run names the
// maze image, the endpoints, any painted barriers and how the result is
// written:
//
//	image     = "maze.png"
//	threshold = 128
//	speed     = 5
//	save      = true
//
//	start { row = 0  col = 0 }
//	end   { row = 40 col = 52 }
//
//	barrier { row = 3 col = 4 }
//	stroke {
//	  from = [10, 0]
//	  to   = [10, 20]
//	}
//
// Relative image and output paths are resolved against the directory of the
// file they appear in.
package config
