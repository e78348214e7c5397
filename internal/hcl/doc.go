// Package hcl provides the HCL implementation of config.Loader. Settings
// files are parsed with hclparse and decoded with gohcl; expressions can read
// environment variables through the `env` object, e.g.
//
//	output = "${env.BUILD_DIR}/CMakeLists.txt"
package hcl
