package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntry_ValidDescriptors(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		locales     []string
		wantName    string
		wantCommand string
		wantIcon    string
	}{
		{
			name:        "TypicalEntry_SanitizesExec",
			text:        "Name=Firefox\nExec=firefox %u\nIcon=firefox",
			wantName:    "Firefox",
			wantCommand: "firefox",
			wantIcon:    "firefox",
		},
		{
			name:        "NoIcon_ShouldSucceed",
			text:        "Name=Top\nExec=top",
			wantName:    "Top",
			wantCommand: "top",
		},
		{
			name:        "CommentsAndBlankLines_AreIgnored",
			text:        "# generated\n\nName=VLC\n# another comment\nExec=vlc %U --fullscreen\n",
			wantName:    "VLC",
			wantCommand: "vlc --fullscreen",
		},
		{
			name:        "MalformedLines_AreSkippedNotFatal",
			text:        "garbage line without equals\nName=Editor\nExec=editor",
			wantName:    "Editor",
			wantCommand: "editor",
		},
		{
			name:        "HeaderlessDescriptor_IsAccepted",
			text:        "Name=Plain\nExec=plain",
			wantName:    "Plain",
			wantCommand: "plain",
		},
		{
			name:        "KeysOutsideDesktopEntrySection_AreIgnored",
			text:        "[Desktop Entry]\nName=Shell\nExec=shell\n[Desktop Action new]\nName=New Window\nExec=shell --new",
			wantName:    "Shell",
			wantCommand: "shell",
		},
		{
			name:        "DuplicateKeys_FirstWins",
			text:        "Name=First\nName=Second\nExec=first\nExec=second",
			wantName:    "First",
			wantCommand: "first",
		},
		{
			name:        "LocalizedName_PreferredInOrder",
			text:        "Name=Files\nName[de]=Dateien\nName[fr]=Fichiers\nExec=files",
			locales:     []string{"fr", "de"},
			wantName:    "Fichiers",
			wantCommand: "files",
		},
		{
			name:        "LocalizedName_FallsBackToBareName",
			text:        "Name=Files\nName[de]=Dateien\nExec=files",
			locales:     []string{"ja"},
			wantName:    "Files",
			wantCommand: "files",
		},
		{
			name:        "LocalizedName_SecondPreferenceMatches",
			text:        "Name=Files\nName[de]=Dateien\nExec=files",
			locales:     []string{"ja", "de"},
			wantName:    "Dateien",
			wantCommand: "files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ParseEntry(tt.text, tt.locales)

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, rec.Name())
			assert.Equal(t, tt.wantCommand, rec.Command())
			assert.Equal(t, tt.wantIcon, rec.Icon())
		})
	}
}

func TestParseEntry_Rejections(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "MissingName_IsRejected",
			text: "Exec=foo\n",
		},
		{
			name: "MissingExec_IsRejected",
			text: "Name=Foo\n",
		},
		{
			name: "EmptyDescriptor_IsRejected",
			text: "",
		},
		{
			name: "OnlyComments_IsRejected",
			text: "# nothing here\n# at all",
		},
		{
			name: "ExecAllPlaceholders_IsRejected",
			text: "Name=Ghost\nExec=%F %U",
		},
		{
			name: "EmptyValues_AreRejected",
			text: "Name=\nExec=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ParseEntry(tt.text, nil)

			assert.ErrorIs(t, err, ErrMissingField)
			assert.Zero(t, rec, "rejection must never yield a partial record")
		})
	}
}
