package service

import "github.com/lwenger/vocatrain/internal/models"

// builtinCollection ships with the tool so a fresh store is usable before
// the first import.
var builtinCollection = models.Collection{
	Name: "Evolution_und_Steinzeit",
	Items: []models.Pair{
		{De: "die Urgeschichte", Fr: "la Préhistoire"},
		{De: "die Frühgeschichte", Fr: "la Protohistoire"},
		{De: "die Altsteinzeit (2,5 Mio.-9500 v. Chr.)", Fr: "le Paléolithique"},
		{De: "die Jungsteinzeit (9500 v. Chr.-2200 v. Chr.)", Fr: "le Néolithique"},
		{De: "der Archäologe", Fr: "l'archéologue"},
		{De: "die Höhlenmalerei", Fr: "la peinture pariétale"},
		{De: "der Nomade, die Nomadin", Fr: "un/une nomade"},
		{De: "roden, urbar machen", Fr: "défricher"},
		{De: "der/die Sesshafte", Fr: "le/la sédentaire"},
		{De: "sesshaft werden", Fr: "devenir sédentaire"},
		{De: "der Tauschhandel", Fr: "le troc"},
		{De: "der Jäger und Sammler", Fr: "le chasseur-cueilleur"},
		{De: "der Faustkeil", Fr: "le biface en silex"},
		{De: "das Haustier", Fr: "l'animal domestique"},
	},
}
