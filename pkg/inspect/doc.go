// Package inspect is an interactive terminal inspector for remote
// JavaScript objects. It binds one named object in a browser session and
// resolves whatever the user types through the jsbind layer, echoing the
// generated JavaScript (syntax highlighted) next to each result.
//
// Commands:
//
//	<attr>              resolve an attribute (property value or function)
//	:call <attr> [args] resolve with function semantics and invoke
//	:props / :funcs     enumerate own properties / functions
//	:attrs              enumerate all own properties
//	:all                enumerate the whole prototype chain
//	:match <pattern>    enumerate chain attributes matching a glob
//	:query <selector>   run a jQuery selector query
//	:help               show command help
//
// ctrl+y copies the last result to the system clipboard; esc or ctrl+c
// quits.
package inspect
