// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigFileNotFoundId Id = iota + 1
	MarkerNotFoundId
	MarkersInvertedId
	NoProfilesId
	SettingsLoadFailedId
	ReloadFailedId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to lookup the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	configFileNotFoundIssue = &Issue{
		id: ConfigFileNotFoundId,
		mdMsg: `
# Sway config file not found!

The sway configuration file could not be read.

## Default location:
~~~
~/.config/sway/config
~~~

## Things you can try:
- Check that sway is set up and the file exists
- Point swayout at a different file:
~~~
$ swayout --sway-config /path/to/config
~~~
- Or set it permanently:
~~~
$ swayout config set sway_config_path /path/to/config
~~~`,
	}

	markerNotFoundIssue = &Issue{
		id: MarkerNotFoundId,
		mdMsg: `
# Display section markers not found!

swayout only edits the part of your sway config between two marker lines,
and one of them is missing.

## Expected layout:
~~~
### Display Start ###
# Description = Desk setup, Status = Enabled
output DP-1 res 2560x1440 pos 0 0
# Description = Laptop only, Status = Disabled
# output eDP-1 res 1920x1080
### Display End ###
~~~

## Things you can try:
- Add the marker lines around your display configuration blocks
- The markers are matched by substring, so any line containing
  "Display Start" / "Display End" works
- Custom markers can be set via:
~~~
$ swayout config set markers.start "My Start"
$ swayout config set markers.end "My End"
~~~`,
	}

	markersInvertedIssue = &Issue{
		id: MarkersInvertedId,
		mdMsg: `
# Display section markers are inverted!

The end marker appears before the start marker, so there is no section to
edit.

## Things you can try:
- Make sure the line containing "Display Start" comes before the line
  containing "Display End"
- Remove any stray earlier occurrence of the end marker; the first
  occurrence of each marker wins`,
	}

	noProfilesIssue = &Issue{
		id: NoProfilesId,
		mdMsg: `
# No display configurations found!

The display section exists but contains no configuration blocks.

## Each block starts with a header line:
~~~
# Description = <name>, Status = Enabled|Disabled
~~~
followed by the output directives for that configuration.

## Things you can try:
- Add at least one block between the markers
- Check the header lines match the format above exactly`,
	}

	settingsLoadFailedIssue = &Issue{
		id: SettingsLoadFailedId,
		mdMsg: `
# Failed to load swayout configuration!

Could not load the swayout configuration file.

## Configuration file locations:
- Linux: ~/.config/swayout/config.cue
- macOS: ~/Library/Application Support/swayout/config.cue
- Windows: %APPDATA%\swayout\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ swayout config init
~~~
- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
sway_config_path: "~/.config/sway/config"
reload_command: ["swaymsg", "reload"]

markers: {
	start: "Display Start"
	end:   "Display End"
}
~~~`,
	}

	reloadFailedIssue = &Issue{
		id: ReloadFailedId,
		mdMsg: `
# Reload failed — but your config was updated!

The sway config file was rewritten successfully, only the live reload
failed. Nothing was rolled back.

## Things you can try:
- Reload manually:
~~~
$ swaymsg reload
~~~
- Check that swaymsg is on your PATH and sway is running
- Configure a different reload command:
~~~
$ swayout config set reload_command "swaymsg reload"
~~~`,
	}

	issues = map[Id]*Issue{
		configFileNotFoundIssue.Id(): configFileNotFoundIssue,
		markerNotFoundIssue.Id():     markerNotFoundIssue,
		markersInvertedIssue.Id():    markersInvertedIssue,
		noProfilesIssue.Id():         noProfilesIssue,
		settingsLoadFailedIssue.Id(): settingsLoadFailedIssue,
		reloadFailedIssue.Id():       reloadFailedIssue,
	}
)

func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.Id()) - int(b.Id()) })
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}
