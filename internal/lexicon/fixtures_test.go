package lexicon

const frenchChat = `== {{langue|fr}} ==
=== {{S|étymologie}} ===
: Du {{étyl|la|fr|mot=cattus}}. (1) Attesté au XIIe siècle.

=== {{S|nom|fr}} ===
{{fr-rég|ʃa}}
'''chat''' {{pron|ʃa|fr}} {{m}}
# [[Petit]] [[mammifère]] [[carnivore]] domestique.
#* ''Le chat dort.''
# {{figuré|fr}} Personne rusée.

==== {{S|synonymes}} ====
* [[matou]]
* [[minet]]

== {{langue|en}} ==
=== {{S|nom|en}} ===
'''chat'''
# [[bavardage|Bavardage]].
`

const frenchChats = `== {{langue|fr}} ==
=== {{S|nom|fr|flexion}} ===
{{fr-rég|ʃa|s=chat}}
'''chats''' {{pron|ʃa|fr}} {{m}}
# ''Pluriel de'' [[chat]].
`

const frenchMangeons = `== {{langue|fr}} ==
=== {{S|verbe|fr|flexion}} ===
{{fr-verbe-flexion|manger|ind.p.1p=oui}}
'''mangeons''' {{pron|mɑ̃.ʒɔ̃|fr}}
# ''Première personne du pluriel de l’indicatif présent de'' [[manger]].
`

const frenchSubGloss = `== {{langue|fr}} ==
=== {{S|adjectif|fr}} ===
'''vert''' {{pron|vɛʁ|fr}}
# {{term|couleur}}
## Qui est de la couleur de l’herbe.
`

const frenchClef = `== {{langue|fr}} ==
=== {{S|nom|fr}} ===
'''clef''' {{pron|kle|fr}} {{f}}
# {{variante de|clé}}.
`

const frenchTypo = `== {{langue|fr}} ==
=== {{S|variante typographique|fr}} ===
'''oeuvre'''
# Variante typographique de [[œuvre]].
`

const englishCat = `==English==
===Etymology===
From {{inh|en|enm|cat}}, from {{inh|en|ang|catt}}.

===Noun===
{{en-noun}}

# An animal of the family [[Felidae]]:
#* {{quote-book|en|year=1895}}
# {{lb|en|informal}} A person.

====Synonyms====
* {{l|en|kitty}}
* {{l|en|moggy}}

==French==
===Noun===
{{fr-noun|m}}
# [[chat]]
`

const englishCats = `==English==
===Noun===
{{head|en|noun form}}

# {{plural of|en|cat}}
`

const pageEnglishNonGloss = `==English==
===Interjection===
{{en-interj}}

# {{non-gloss definition|Used to greet someone.}}
`

const germanHaus = `== Haus ({{Sprache|Deutsch}}) ==
=== {{Wortart|Substantiv|Deutsch}}, {{n}} ===
{{Bedeutungen}}
:[1] [[Gebäude]], das Menschen zum [[Wohnen]] dient
:[2] Familie

{{Herkunft}}
:von mittelhochdeutsch ''hūs''

{{Synonyme}}
:[1] [[Gebäude]], [[Heim]]
`

const germanLief = `== lief ({{Sprache|Deutsch}}) ==
=== {{Wortart|Konjugierte Form|Deutsch}} ===
{{Grammatische Merkmale}}
*1. Person Singular Indikativ Präteritum Aktiv des Verbs '''[[laufen]]'''
`

const germanOld = `== Schiffahrt ({{Sprache|Deutsch}}) ==
{{Alte Schreibweise|Schifffahrt|Deutsch}}
=== {{Wortart|Substantiv|Deutsch}}, {{f}} ===
`

const germanAdverb = `== heute ({{Sprache|Deutsch}}) ==
=== {{Wortart|Temporaladverb|Deutsch}} ===
{{Bedeutungen}}
:[1] an diesem Tag
`

const germanProperNoun = `== Berlin ({{Sprache|Deutsch}}) ==
=== {{Wortart|Eigenname|Deutsch}} ===
{{Bedeutungen}}
:[1] Hauptstadt Deutschlands
`
