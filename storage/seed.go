package storage

import "github.com/Isc-2025/Isc-2025.github.io/model"

// SeedVideos is the initial curated catalogue, newest first.
func SeedVideos() []model.Video {
	return []model.Video{
		{
			YoutubeID: "S15e-qC1S0I",
			Title:     "Où va l'IA ? (Feu de Bengale)",
			Uploader:  "Feu de Bengale • 215K vues",
			Keywords:  []string{"IA", "Modèles de Langage", "Éthique", "Alignement", "Régulation"},
			Summary: "Analyse approfondie de la trajectoire actuelle de l'intelligence artificielle, de ses capacités émergentes " +
				"(modèles de langage) aux risques sociétaux et existentiels. Discussion sur l'alignement et la régulation.",
			AdminAnnotation: "Excellent point de départ pour le débat sur l'IA forte. Pertinent pour le cours ISC-8001.",
		},
		{
			YoutubeID: "9to-e4c1Eho",
			Title:     "Le Problème Difficile de la Conscience (David Chalmers)",
			Uploader:  "David Chalmers (TED) • 2.5M vues",
			Keywords:  []string{"Conscience", "Philosophie", "Neurosciences", "Problème Difficile", "Subjectivité"},
			Summary: "Le philosophe David Chalmers explore le \"problème difficile\" de la conscience : pourquoi et comment les " +
				"processus physiques du cerveau donnent-ils lieu à une expérience subjective riche ? Il distingue les problèmes " +
				"\"faciles\" (mécanismes) du problème \"difficile\" (l'expérience elle-même).",
		},
		{
			YoutubeID: "7s0CpR_FNA4",
			Title:     "La Théorie du Langage de Chomsky",
			Uploader:  "The Brain Maze • 325K vues",
			Keywords:  []string{"Langage", "Linguistique", "Chomsky", "Grammaire Universelle", "Cognition"},
			Summary: "Cette vidéo résume les concepts clés de la théorie linguistique de Noam Chomsky, notamment la grammaire " +
				"universelle, l'innéisme et le dispositif d'acquisition du langage (LAD). Elle oppose sa vision aux approches béhavioristes.",
			AdminAnnotation: "Référence classique pour l'acquisition du langage.",
		},
		{
			YoutubeID: "rS1-50LY0gA",
			Title:     "Qu'est-ce que la Science Cognitive ?",
			Uploader:  "Ryan Rhodes • 110K vues",
			Keywords:  []string{"Science Cognitive", "Interdisciplinaire", "Esprit", "Cerveau", "Computation"},
			Summary: "Une introduction claire à ce qu'est la science cognitive. La vidéo la définit comme l'étude " +
				"interdisciplinaire de l'esprit et de l'intelligence, combinant la psychologie, l'informatique, les " +
				"neurosciences, la linguistique et la philosophie.",
			AdminAnnotation: "Bonne vidéo d'introduction pour les nouveaux étudiants.",
		},
		{
			YoutubeID: "Rz1x02nnlqg",
			Title:     "La conscience, par Stanislas Dehaene",
			Uploader:  "Collège de France • 180K vues",
			Keywords:  []string{"Conscience", "Stanislas Dehaene", "Espace de Travail Global", "Neurosciences", "Signature Cérébrale"},
			Summary: "Stanislas Dehaene présente ses travaux sur les \"signatures\" cérébrales de la conscience. Il expose la " +
				"théorie de l'espace de travail neuronal global (Global Neuronal Workspace), suggérant que la conscience émerge " +
				"lorsqu'une information est largement diffusée à travers différents modules cérébraux.",
		},
		{
			YoutubeID: "i3OYlaoj-SY",
			Title:     "Yuval Harari et Lex Fridman sur l'IA",
			Uploader:  "Lex Fridman • 5.2M vues",
			Keywords:  []string{"IA", "Yuval Noah Harari", "Lex Fridman", "Société", "Avenir"},
			Summary: "Une conversation profonde entre Yuval Noah Harari et Lex Fridman sur l'impact potentiel de " +
				"l'intelligence artificielle sur l'humanité, l'avenir des sociétés, le pouvoir narratif et les risques existentiels.",
			AdminAnnotation: "Perspective philosophique et sociétale importante.",
		},
	}
}
