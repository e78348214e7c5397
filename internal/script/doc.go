// Package script renders a whole CMakeLists.txt for a project. The Reprojucer
// flavour calls the jucer_* functions in a fixed order: preamble, module path
// include, project file guard, project begin and settings, file groups,
// modules, export targets and project end. The JUCE 6 flavour targets JUCE's
// own CMake API instead.
package script
