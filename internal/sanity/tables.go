package sanity

import "regexp"

// massivePlatform describes a well-known platform whose mention via
// "like X", "X-like", or "X clone" signals an unrealistic scope comparison.
// Evaluated in order; only the first match produces a warning.
type massivePlatform struct {
	name        string // lowercase match token
	scaleName   string // e.g. "Amazon-scale"
	typicalCost string // real-world development cost tier
}

var massivePlatforms = []massivePlatform{
	{"amazon", "Amazon-scale", "$500M-$1B+"},
	{"facebook", "Facebook-scale", "$100M-$500M+"},
	{"netflix", "Netflix-scale", "$100M-$500M+"},
	{"uber", "Uber-scale", "$50M-$200M+"},
	{"airbnb", "Airbnb-scale", "$50M-$200M+"},
	{"twitter", "Twitter-scale", "$100M-$500M+"},
	{"instagram", "Instagram-scale", "$100M-$500M+"},
	{"youtube", "YouTube-scale", "$500M-$1B+"},
	{"spotify", "Spotify-scale", "$100M-$500M+"},
	{"linkedin", "LinkedIn-scale", "$100M-$500M+"},
}

// deprecatedTech maps an outdated technology token to its modern
// alternatives. Ordered so warning output is deterministic.
type deprecatedTech struct {
	token       string
	displayName string
	alternative string
}

var deprecatedTechs = []deprecatedTech{
	{"flash", "Flash", "HTML5, WebGL, or modern web standards"},
	{"jquery", "jQuery", "Vanilla JavaScript, React, Vue, or Angular (for UI interactivity)"},
	{"angular.js", "AngularJS", "Angular (modern version), React, or Vue"},
	{"angularjs", "AngularJS", "Angular (modern version), React, or Vue"},
	{"bower", "Bower", "npm or yarn (for package management)"},
	{"grunt", "Grunt", "webpack, Vite, or npm scripts"},
	{"gulp", "Gulp", "webpack, Vite, or npm scripts"},
	{"backbone", "Backbone", "React, Vue, or Angular"},
	{"knockout", "Knockout", "React, Vue, or Angular"},
	{"coffeescript", "CoffeeScript", "TypeScript or modern JavaScript (ES6+)"},
	{"php 5", "PHP 5", "PHP 8+ or Node.js"},
	{"mysql 5.5", "MySQL 5.5", "MySQL 8.0+ or PostgreSQL"},
	{"python 2", "Python 2", "Python 3.10+ (Python 2 is deprecated)"},
	{"ie 11", "IE 11", "Modern browsers (Edge, Chrome, Firefox, Safari)"},
}

// conflictGroup describes two sets of competing technologies in the same
// category; mentioning members of both sides indicates confused requirements.
type conflictGroup struct {
	groupA   []string
	groupB   []string
	category string
}

var conflictGroups = []conflictGroup{
	{[]string{"react", "reactjs"}, []string{"angular", "vue", "vuejs"}, "frontend frameworks"},
	{[]string{"angular"}, []string{"vue", "vuejs"}, "frontend frameworks"},
	{[]string{"mysql", "mariadb"}, []string{"postgresql", "postgres"}, "relational databases"},
	{[]string{"django"}, []string{"flask", "fastapi"}, "Python web frameworks"},
	{[]string{"express"}, []string{"fastify", "koa"}, "Node.js frameworks"},
}

// versionCheck flags a mentioned technology version below its minimum
// acceptable floor.
type versionCheck struct {
	pattern     *regexp.Regexp
	minVersion  int
	displayName string
	recommended string
}

var versionChecks = []versionCheck{
	{regexp.MustCompile(`node\s*(?:js)?\s*v?([0-9]+)`), 10, "Node.js", "Node.js 18+ or 20+ (LTS)"},
	{regexp.MustCompile(`react\s*v?([0-9]+)`), 16, "React", "React 18+"},
	{regexp.MustCompile(`angular\s*v?([0-9]+)`), 12, "Angular", "Angular 15+"},
	{regexp.MustCompile(`vue\s*v?([0-9]+)`), 2, "Vue", "Vue 3+"},
}
