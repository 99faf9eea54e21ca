// Package enigma simulates the three rotor Enigma cipher machine.
//
// A key press first steps the rotors, then the signal runs through the plugboard,
// the rotors from left to right, the reflector, the rotors from right to left
// and the plugboard again. Because the reflector never maps a letter onto itself,
// no letter is ever encrypted to itself, and the same settings both encrypt and decrypt.
package enigma
